package wordpress

const queryAllPosts = `
query GetAllPosts($first: Int!, $after: String) {
  posts(first: $first, after: $after, where: { status: PUBLISH }) {
    nodes {
      id
      title
      slug
      excerpt
      date
      author { node { name } }
      categories { nodes { databaseId name slug } }
      featuredImage { node { sourceUrl altText } }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

const queryPostBySlug = `
query GetPostBySlug($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    id
    title
    slug
    excerpt
    content
    date
    author { node { name } }
    categories { nodes { databaseId name slug } }
    tags { nodes { name slug } }
    featuredImage { node { sourceUrl altText } }
  }
}`

const queryRelatedPosts = `
query GetRelatedPosts($categoryId: ID!) {
  category(id: $categoryId) {
    posts(first: 5) {
      nodes {
        id
        title
        excerpt
        slug
        date
        featuredImage { node { sourceUrl altText } }
      }
    }
  }
}`
